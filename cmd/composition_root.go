package cmd

import (
	"fmt"

	httpin "mota/internal/adapters/in/http"
	"mota/internal/adapters/out/kafka"
	"mota/internal/adapters/out/memory"
	"mota/internal/adapters/out/motaapi"
	"mota/internal/core/application/usecases/commands"
	"mota/internal/core/application/usecases/queries"
	"mota/internal/core/ports"
	"mota/internal/jobs"

	"go.uber.org/zap"
)

type CompositionRoot struct {
	config    Config
	logger    *zap.Logger
	gateway   ports.OrderGateway
	publisher ports.EventPublisher
	board     *memory.BoardStore
	closers   []func()
}

func NewCompositionRoot(config Config, logger *zap.Logger) (*CompositionRoot, error) {
	gateway, err := motaapi.NewClient(config.MotaAPIURL, config.MotaAPITimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}

	root := &CompositionRoot{
		config:  config,
		logger:  logger,
		gateway: gateway,
		board:   memory.NewBoardStore(),
	}

	if config.KafkaHost == "" {
		logger.Info("KAFKA_HOST is empty, status change events are not published")
		root.publisher = kafka.NopPublisher{}
		return root, nil
	}

	publisher, err := kafka.NewPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, logger)
	if err != nil {
		return nil, fmt.Errorf("create kafka publisher: %w", err)
	}
	root.publisher = publisher
	root.closers = append(root.closers, publisher.Close)
	return root, nil
}

// Close releases the connections opened by the root.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.gateway, c.publisher, component(c.logger, "commands"))
}

func (c *CompositionRoot) CreateReportOrderErrorCommandHandler() commands.ReportOrderErrorCommandHandler {
	return commands.NewReportOrderErrorCommandHandler(c.gateway, c.publisher, component(c.logger, "commands"))
}

func (c *CompositionRoot) CreatePauseOrderCommandHandler() commands.PauseOrderCommandHandler {
	return commands.NewPauseOrderCommandHandler(c.gateway, c.publisher, component(c.logger, "commands"))
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.gateway, c.publisher, component(c.logger, "commands"))
}

func (c *CompositionRoot) CreateAssignParticipantCommandHandler() commands.AssignParticipantCommandHandler {
	return commands.NewAssignParticipantCommandHandler(c.gateway, component(c.logger, "commands"))
}

func (c *CompositionRoot) CreateRefreshBoardCommandHandler() commands.RefreshBoardCommandHandler {
	return commands.NewRefreshBoardCommandHandler(c.gateway, c.board)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetStationQueueQueryHandler() queries.GetStationQueueQueryHandler {
	return queries.NewGetStationQueueQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetPipelineBoardQueryHandler() queries.GetPipelineBoardQueryHandler {
	return queries.NewGetPipelineBoardQueryHandler(c.board)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AdvanceOrder:      c.CreateAdvanceOrderCommandHandler(),
		ReportOrderError:  c.CreateReportOrderErrorCommandHandler(),
		PauseOrder:        c.CreatePauseOrderCommandHandler(),
		ConfirmOrder:      c.CreateConfirmOrderCommandHandler(),
		AssignParticipant: c.CreateAssignParticipantCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrderTimeline:  c.CreateGetOrderTimelineQueryHandler(),
		GetOrdersByStatus: c.CreateGetOrdersByStatusQueryHandler(),
		GetStationQueue:   c.CreateGetStationQueueQueryHandler(),
		GetPipelineBoard:  c.CreateGetPipelineBoardQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRefreshBoardCommandHandler(), c.config.BoardRefreshSchedule, c.logger)
}

// component tags loggers of packages that do not name themselves. The
// adapters and jobs add their own component field.
func component(logger *zap.Logger, name string) *zap.Logger {
	return logger.With(zap.String("component", name))
}
