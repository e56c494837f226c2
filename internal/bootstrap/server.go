package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flighttime/api"
	"github.com/Domenick1991/flighttime/config"
	flighttimeapi "github.com/Domenick1991/flighttime/internal/api/flighttime_service_api"
	"github.com/Domenick1991/flighttime/internal/requestid"
	"github.com/Domenick1991/flighttime/internal/service/flights"
	"google.golang.org/grpc"
)

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the HTTP server and, when configured, the gRPC server. It blocks
// until ctx is canceled or a server fails; either way both servers are stopped.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase) error {
	s := newServers(cfg, flightSvc)

	var grpcLis net.Listener
	if s.grpcServer != nil {
		lis, err := net.Listen("tcp", cfg.GRPC.Address)
		if err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
		grpcLis = lis
	}

	httpLis, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		if grpcLis != nil {
			_ = grpcLis.Close()
		}
		return fmt.Errorf("listen HTTP %s: %w", cfg.HTTP.Address, err)
	}

	errCh := make(chan error, 2)

	if grpcLis != nil {
		log.Printf("gRPC server listening on %s", grpcLis.Addr())
		go func() { errCh <- s.grpcServer.Serve(grpcLis) }()
	}

	log.Printf("HTTP server listening on %s", httpLis.Addr())
	go func() {
		if err := s.httpServer.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if stopErr := s.stop(); stopErr != nil {
			log.Printf("stop servers: %v", stopErr)
		}
		return err
	case <-ctx.Done():
		return s.stop()
	}
}

func (s *Servers) stop() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func newServers(cfg *config.Config, flightSvc flights.FlightUseCase) *Servers {
	var grpcSrv *grpc.Server
	if cfg.GRPC.Address != "" {
		grpcSrv = grpc.NewServer(grpc.UnaryInterceptor(requestid.UnaryServerInterceptor()))
		flighttimeapi.RegisterFlightTimeServiceServer(grpcSrv, flighttimeapi.NewServer(flightSvc))
	}

	router := api.NewRouter(flightSvc, api.RouterOptions{Swagger: cfg.HTTP.SwaggerEnabled()})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}
}
