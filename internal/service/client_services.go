package service

import (
	"github.com/MKhiriev/adventure-client/internal/adapter"
	"github.com/MKhiriev/adventure-client/internal/logger"
)

// ClientServices groups the services the shell depends on.
type ClientServices struct {
	GameService GameService
}

func NewClientServices(gameAdapter adapter.GameAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		GameService: NewClientGameService(gameAdapter, logger),
	}
}
