package main

import "github.com/hello383/Sway/internal/app"

func main() {
	app.Run()
}
