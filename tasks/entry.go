package tasks

import (
	"github.com/Wayner84/minecraft-schematic-studio/define"
)

var pool map[string]func() define.Task
var isInit bool

// Pool returns the constructors of every command, keyed by the name used on the command line.
func Pool() map[string]func() define.Task {
	if !isInit {
		pool = make(map[string]func() define.Task)

		// Registry
		pool["import"] = func() define.Task { return &Import{} }
		pool["export"] = func() define.Task { return &Export{} }
		pool["info"] = func() define.Task { return &Info{} }
		pool["convert"] = func() define.Task { return &Convert{} }
		pool["library"] = func() define.Task { return &Library{} }

		isInit = true
	}
	return pool
}
