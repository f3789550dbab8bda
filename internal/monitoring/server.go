package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"factory-backend/internal/session"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Server exposes the operator surface: health, prometheus metrics and
// basic system stats. It never serves end users.
type Server struct {
	db       *pgxpool.Pool
	registry *session.Registry
	port     int
}

func NewServer(db *pgxpool.Pool, registry *session.Registry, port int) *Server {
	return &Server{db: db, registry: registry, port: port}
}

type healthStatus struct {
	Status   string         `json:"status"`
	Database databaseHealth `json:"database"`
	Sessions int            `json:"sessions"`
}

type databaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type systemInfo struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    uint64  `json:"memory_used_bytes"`
	MemoryTotal   uint64  `json:"memory_total_bytes"`
	DiskPercent   float64 `json:"disk_percent"`
}

// Run blocks serving the monitoring endpoints.
func (s *Server) Run() error {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	r.HandleFunc("/sysinfo", s.handleSysinfo).Methods("GET")

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("[Monitoring] listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	dbHealth := s.checkDatabase()

	status := "healthy"
	code := http.StatusOK
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(healthStatus{
		Status:   status,
		Database: dbHealth,
		Sessions: s.registry.Len(),
	})
}

func (s *Server) checkDatabase() databaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return databaseHealth{Status: "unhealthy", ResponseTime: responseTime}
	}
	return databaseHealth{Status: "healthy", ResponseTime: responseTime}
}

func (s *Server) handleSysinfo(w http.ResponseWriter, r *http.Request) {
	var info systemInfo

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		info.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemoryPercent = vm.UsedPercent
		info.MemoryUsed = vm.Used
		info.MemoryTotal = vm.Total
	}
	if du, err := disk.Usage("/"); err == nil {
		info.DiskPercent = du.UsedPercent
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
