package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/cache"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/presets"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	formatCSV   = "csv"

	defaultRandomCount = 5
)

type SchedulerHandler interface {
	Health(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	Presets(ctx *fiber.Ctx) error
	Random(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	cache  cache.Cache

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, responseCache cache.Cache) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		cache:  responseCache,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type algorithmInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Preemptive bool   `json:"preemptive"`
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	algorithms := make([]algorithmInfo, 0, len(core.Algorithms()))
	for _, a := range core.Algorithms() {
		algorithms = append(algorithms, algorithmInfo{ID: a.String(), Title: a.Title(), Preemptive: a.Preemptive()})
	}
	return ctx.JSON(fiber.Map{"algorithms": algorithms})
}

func (s *SchedulerHandlerImpl) Presets(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"presets": presets.All()})
}

func (s *SchedulerHandlerImpl) Random(ctx *fiber.Ctx) error {
	n := ctx.QueryInt("n", defaultRandomCount)

	s.rngMu.Lock()
	processes := requests.RandomProcesses(s.rng, n)
	s.rngMu.Unlock()

	return ctx.JSON(fiber.Map{"processes": processes})
}

// Schedule runs one algorithm. The algorithm comes from the path, or from the body
// when the path omits it; unknown ids fall back to fcfs.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}

	name := ctx.Params("algorithm", request.Algorithm)
	algorithm, err := core.ParseAlgorithm(name)
	if err != nil {
		slog.Warn("unknown algorithm, falling back to fcfs", "algorithm", name)
	}
	quantum := request.QuantumOr(s.config.RoundRobinTimeQuantum())

	format := ctx.Query("format", formatJSON)
	if format != formatJSON && format != formatTable && format != formatCSV {
		return writeError(ctx, fiber.StatusBadRequest, "unsupported format "+strconv.Quote(format))
	}
	if err := schedulers.Validate(request.Processes); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err.Error())
	}

	key := cache.Key("schedule", algorithm.String(), strconv.Itoa(quantum), mustMarshal(request.Processes))
	if format == formatJSON {
		if body, ok := s.cached(ctx, key); ok {
			return sendJSON(ctx, body, true)
		}
	}

	result, err := schedulers.Run(algorithm, request.Processes, schedulers.Options{Quantum: quantum})
	if err != nil {
		return writeRunError(ctx, err)
	}

	var buf bytes.Buffer
	switch format {
	case formatTable:
		if err := report.WriteTable(&buf, algorithm.Title(), result); err != nil {
			return writeError(ctx, fiber.StatusInternalServerError, "can not render table")
		}
		ctx.Type("txt")
		return ctx.Send(buf.Bytes())
	case formatCSV:
		if err := report.WriteCSV(&buf, result); err != nil {
			return writeError(ctx, fiber.StatusInternalServerError, "can not render csv")
		}
		ctx.Type("csv")
		return ctx.Send(buf.Bytes())
	}

	body, err := json.Marshal(responses.NewScheduleResponse(uuid.New(), algorithm, quantum, result))
	if err != nil {
		return writeError(ctx, fiber.StatusInternalServerError, "can not proccess request")
	}
	s.store(ctx, key, body)
	return sendJSON(ctx, body, false)
}

// Compare runs the requested algorithms, or all of them, over the same input.
// Unknown ids are reported per algorithm instead of falling back.
func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request requests.CompareRequest
	if err := ctx.BodyParser(&request); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, "invalid request format")
	}

	format := ctx.Query("format", formatJSON)
	if format != formatJSON && format != formatTable {
		return writeError(ctx, fiber.StatusBadRequest, "unsupported format "+strconv.Quote(format))
	}
	if err := schedulers.Validate(request.Processes); err != nil {
		return writeError(ctx, fiber.StatusBadRequest, err.Error())
	}
	quantum := request.QuantumOr(s.config.RoundRobinTimeQuantum())

	algorithms := make([]core.Algorithm, 0, len(request.Algorithms))
	unknown := make(map[string]error)
	for _, name := range request.Algorithms {
		algorithm, err := core.ParseAlgorithm(name)
		if err != nil {
			unknown[name] = err
			continue
		}
		algorithms = append(algorithms, algorithm)
	}

	outcomes := map[core.Algorithm]schedulers.Outcome{}
	if len(request.Algorithms) == 0 || len(algorithms) > 0 {
		outcomes = schedulers.CompareAll(ctx.UserContext(), request.Processes, schedulers.Options{Quantum: quantum}, algorithms...)
	}

	if format == formatTable {
		var buf bytes.Buffer
		if err := report.WriteComparison(&buf, outcomes, unknown); err != nil {
			return writeError(ctx, fiber.StatusInternalServerError, "can not render table")
		}
		ctx.Type("txt")
		return ctx.Send(buf.Bytes())
	}

	response := responses.NewComparisonResponse(uuid.New(), quantum, outcomes)
	for name, err := range unknown {
		response.AddError(name, err)
	}
	body, err := json.Marshal(response)
	if err != nil {
		return writeError(ctx, fiber.StatusInternalServerError, "can not proccess request")
	}
	return sendJSON(ctx, body, false)
}

func (s *SchedulerHandlerImpl) cached(ctx *fiber.Ctx, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	body, ok, err := s.cache.Get(ctx.UserContext(), key)
	if err != nil {
		slog.Warn("cache lookup failed", "error", err)
		return nil, false
	}
	return body, ok
}

func (s *SchedulerHandlerImpl) store(ctx *fiber.Ctx, key string, body []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx.UserContext(), key, body, s.config.Cache.TTL); err != nil {
		slog.Warn("cache store failed", "error", err)
	}
}

func sendJSON(ctx *fiber.Ctx, body []byte, hit bool) error {
	if hit {
		ctx.Set("X-Cache", "HIT")
	} else {
		ctx.Set("X-Cache", "MISS")
	}
	ctx.Type("json")
	return ctx.Send(body)
}

func writeRunError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidProcess):
		return writeError(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrSimulationDivergence):
		slog.Error("simulation diverged", "error", err)
		return writeError(ctx, fiber.StatusInternalServerError, err.Error())
	default:
		slog.Error("simulation failed", "error", err)
		return writeError(ctx, fiber.StatusInternalServerError, "can not proccess request")
	}
}

func writeError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": message})
}

func mustMarshal(v any) string {
	body, _ := json.Marshal(v)
	return string(body)
}
