package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"
)

type System struct {
	storage Storage
	config  Config
	filter  Filter

	hostStat func() SysInfo
}

func NewSystem(config Config) *System {
	return &System{
		storage: Storage{AuthToken: config.AuthToken},
		config:  config,
		filter:  DefaultFilter,

		hostStat: HostStat,
	}
}

type SysInfo struct {
	Arch     string
	Hostname string
	Platform string
	CPUCount int
	CPUFreq  float64
	RAM      float64
}

func HostStat() SysInfo {
	info := SysInfo{Arch: runtime.GOARCH}
	if hostStat, err := host.Info(); err == nil {
		info.Hostname = hostStat.Hostname
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		totalFreq := 0.0
		for _, cpu := range cpuStat {
			totalFreq += cpu.Mhz
		}
		info.CPUCount = len(cpuStat)
		info.CPUFreq = totalFreq / float64(len(cpuStat)) * 1000
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = float64(vmStat.Total) / 1024 / 1024 / 1024
	}
	return info
}

// Run fetches the selected histograms and prints them to out. Nothing is
// written to out unless the whole query succeeds.
func (s *System) Run(ctx context.Context, out io.Writer) error {
	if AtomicLevel.Enabled(zap.DebugLevel) {
		Logger.Debugf("host stat: %+v", s.hostStat())
	}

	db, err := s.storage.ConnectDb(ctx, s.config.Location)
	if err != nil {
		return fmt.Errorf("failed to open db %v: %w", s.config.Location, err)
	}
	defer db.Close()

	Logger.Debugf("fetching hists with filter %+v", s.filter)
	hists, err := s.storage.FetchHists(ctx, db, s.filter)
	if err != nil {
		return fmt.Errorf("failed to fetch hists from %v: %w", s.config.Location, err)
	}
	Logger.Infof("fetched %v hists from %v", len(hists), s.config.Location)

	_, err = fmt.Fprintln(out, hists)
	return err
}
