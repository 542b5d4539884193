package service

import "github.com/alexanderramin/waypoint/internal/app"

type ProgressService interface {
	app.TrackUseCase
}

type StatusService interface {
	app.StatusUseCase
}

type HistoryService interface {
	app.HistoryUseCase
}
