package frontend

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// localStore backs session.Store with the browser's localStorage.
type localStore struct{}

func (localStore) Get(key string) string {
	v := app.Window().Get("localStorage").Call("getItem", key)
	if !v.Truthy() {
		return ""
	}
	return v.String()
}

func (localStore) Set(key, value string) {
	app.Window().Get("localStorage").Call("setItem", key, value)
}
