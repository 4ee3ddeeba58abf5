package main

import (
	"errors"

	"github.com/Photon1c/ForagingTheoryv2/arenaserver"
	"github.com/Photon1c/ForagingTheoryv2/common/healthcheck"
)

func StartHealthCheck(srv *arenaserver.Server, port string) {
	healthCheckServer := healthcheck.NewHealthCheckServer(port)

	healthCheckServer.Register("run", func() (err error, ok bool) {
		if srv.HasEnded() {
			return errors.New("Run is over"), false
		}

		return nil, true
	})

	healthCheckServer.Register("countdown", func() (err error, ok bool) {
		return nil, srv.GetSecondsLeft() > 0
	})

	healthCheckServer.Listen()
}
