package scenes

import (
	"github.com/decker502/stadium/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var (
	_ Scene          = (*StadiumScene)(nil)
	_ game.Resizable = (*StadiumScene)(nil)
)
