// Package chore holds the task and category services and the App
// wiring that commands consume.
package chore

import (
	"github.com/colonyops/chore/internal/core/config"
)

// App is the central entry point for all chore operations. Commands
// consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks      *TaskService
	Categories *CategoryService
	Config     *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(tasks *TaskService, cats *CategoryService, cfg *config.Config) *App {
	return &App{
		Tasks:      tasks,
		Categories: cats,
		Config:     cfg,
	}
}
