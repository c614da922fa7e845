package main

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/thelolagemann/dmgcore/pkg/log"
)

// launchStatsview serves live runtime statistics of the process on
// addr, at /debug/statsview.
func launchStatsview(addr string, logger log.Logger) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Infof("stats server available at http://%s/debug/statsview", addr)
}
