package main

import (
	"github.com/biofact005-rgb/neetquiz/internal/app"
	"github.com/biofact005-rgb/neetquiz/internal/config"
)

func main() {
	app.Go(config.Load())
}
