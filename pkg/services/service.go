package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

type Logger interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Info(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

type (
	Service interface {
		Init() error
		Run(ctx context.Context) error
		Stop()
	}
	Services interface {
		AddService(service ...Service)
		Run(ctx context.Context) error
	}
	Manager struct {
		log      Logger
		services []Service
		signals  []os.Signal
	}
)

func NewManager(log Logger) Services {
	return &Manager{log: log, signals: []os.Signal{os.Interrupt, syscall.SIGTERM}}
}

func (s *Manager) AddService(service ...Service) {
	s.services = append(s.services, service...)
}

// Run starts every service and returns when the first one finishes, the
// process is signalled, or ctx is done. The first service error is returned.
func (s *Manager) Run(ctx context.Context) error {
	s.log.Debug("going to start %d services", len(s.services))
	for count, service := range s.services {
		if err := service.Init(); err != nil {
			for i := 0; i < count; i++ {
				s.services[i].Stop()
			}
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, len(s.services))
	for _, service := range s.services {
		go func(svc Service) {
			done <- svc.Run(ctx)
		}(service)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, s.signals...)
	defer signal.Stop(c)

	var err error
	select {
	case <-c:
		s.log.Info("interrupted")
	case <-ctx.Done():
	case err = <-done:
	}
	s.stop()
	return err
}

func (s *Manager) stop() {
	s.log.Debug("going to stop")
	for _, service := range s.services {
		service.Stop()
	}
}
