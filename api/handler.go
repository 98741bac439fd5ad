package api

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"

	"os-scheduler-simulator/config"
	"os-scheduler-simulator/internal/core"
	"os-scheduler-simulator/internal/logging"
	"os-scheduler-simulator/internal/requests"
	"os-scheduler-simulator/internal/schedulers"
)

type SchedulerHandler interface {
	AddProcess(ctx *fiber.Ctx) error
	ListProcesses(ctx *fiber.Ctx) error
	GetProcess(ctx *fiber.Ctx) error
	ClearProcesses(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
}

// SchedulerHandlerImpl owns one simulation session. The mutex gives the
// registry a single writer; runs hold it for their whole duration.
type SchedulerHandlerImpl struct {
	config     *config.SchedulerConfig
	logger     *slog.Logger
	dispatcher *schedulers.Dispatcher

	mu       sync.Mutex
	registry *core.ProcessRegistry
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:     config,
		logger:     logger,
		dispatcher: schedulers.NewDispatcher(logger),
		registry:   core.NewProcessRegistry(),
	}
}

// quantumRequest distinguishes an omitted quantum from an explicit zero.
type quantumRequest struct {
	TimeQuantum *int `json:"time_quantum"`
}

type levelsRequest struct {
	LevelsTimeQuantum []int `json:"levels_time_quantum"`
}

type scheduleRequest struct {
	Algorithm         string `json:"algorithm"`
	TimeQuantum       *int   `json:"time_quantum"`
	LevelsTimeQuantum []int  `json:"levels_time_quantum"`
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var request requests.AddProcessRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, err)
	}
	process, err := request.Process(s.config.MaxBurst)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.mu.Lock()
	err = s.registry.AddProcess(process)
	s.mu.Unlock()
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Info("process added", "pid", process.ID, "name", process.Name)
	return ctx.Status(fiber.StatusCreated).JSON(schedulers.ProcessListing(*process))
}

func (s *SchedulerHandlerImpl) ListProcesses(ctx *fiber.Ctx) error {
	s.mu.Lock()
	processes := s.registry.ListAll()
	s.mu.Unlock()
	return ctx.JSON(schedulers.ProcessListings(processes))
}

func (s *SchedulerHandlerImpl) GetProcess(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return s.badRequest(ctx, err)
	}
	s.mu.Lock()
	process, ok := s.registry.Get(id)
	s.mu.Unlock()
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "process not found"})
	}
	return ctx.JSON(schedulers.ProcessListing(process))
}

func (s *SchedulerHandlerImpl) ClearProcesses(ctx *fiber.Ctx) error {
	s.mu.Lock()
	s.registry.Clear()
	s.mu.Unlock()
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	var body scheduleRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&body); err != nil {
			return s.badRequest(ctx, err)
		}
	}
	name := body.Algorithm
	if name == "" {
		name = s.config.DefaultAlgorithm
	}
	algorithm, err := requests.ParseAlgorithm(name)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.run(ctx, requests.RunScheduleRequest{
		Algorithm:         algorithm,
		TimeQuantum:       s.quantum(body.TimeQuantum),
		LevelsTimeQuantum: s.levels(body.LevelsTimeQuantum),
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var body quantumRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&body); err != nil {
			return s.badRequest(ctx, err)
		}
	}
	return s.run(ctx, requests.RunScheduleRequest{
		Algorithm:   requests.RoundRobin,
		TimeQuantum: s.quantum(body.TimeQuantum),
	})
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.run(ctx, requests.RunScheduleRequest{Algorithm: requests.Priority})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.run(ctx, requests.RunScheduleRequest{Algorithm: requests.FirstComeFirstServe})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, requests.RunScheduleRequest{Algorithm: requests.ShortestJobFirst})
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	var body levelsRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&body); err != nil {
			return s.badRequest(ctx, err)
		}
	}
	return s.run(ctx, requests.RunScheduleRequest{
		Algorithm:         requests.MultilevelFeedbackQueue,
		LevelsTimeQuantum: s.levels(body.LevelsTimeQuantum),
	})
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request requests.RunScheduleRequest) error {
	s.mu.Lock()
	response, err := s.dispatcher.Run(s.registry, request)
	s.mu.Unlock()
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) quantum(requested *int) int {
	if requested == nil {
		return s.config.RoundRobinTimeQuantum
	}
	return *requested
}

func (s *SchedulerHandlerImpl) levels(requested []int) []int {
	if requested == nil {
		return s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return requested
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	s.logger.Warn("invalid request format", logging.ErrAttr(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	s.logger.Warn("request failed", "path", ctx.Path(), logging.ErrAttr(err))
	return ctx.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrDuplicateID):
		return fiber.StatusConflict
	case errors.Is(err, core.ErrEmptyQueue),
		errors.Is(err, core.ErrClockOverflow):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, core.ErrInvalidQuantum),
		errors.Is(err, core.ErrInvalidProcess),
		errors.Is(err, core.ErrUnknownAlgorithm):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
