package main

import "github.com/Egor213/NewsReport/internal/app"

func main() {
	app.Run()
}
