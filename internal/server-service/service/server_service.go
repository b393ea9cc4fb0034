package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"GSLM_Microservice/internal/server-service/model"
	"GSLM_Microservice/internal/server-service/repository"
	"GSLM_Microservice/pkg/infra"
	"GSLM_Microservice/pkg/lifecycle"
	"GSLM_Microservice/pkg/mail"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type ServerService interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	CreateServers(ctx context.Context, server []model.Server) (insertedServers []model.Server, nonInsertedServer []model.Server, err error)
	UpdateServer(ctx context.Context, updatedServerData model.Server) (model.Server, error)
	DeleteServer(ctx context.Context, id int64) error
	GetServers(ctx context.Context, serverName string, state string, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error)
	GetServerById(ctx context.Context, id int64) (model.Server, error)
	// MarkServerOnline is the bootstrap completion hook: the provisioned
	// instance reports SERVER_STARTED together with its instance id.
	MarkServerOnline(ctx context.Context, id int64, instanceId string) error
	GetServerTransitions(ctx context.Context, id int64, limit int) ([]model.Transition, error)
	ReportServersActivity(ctx context.Context, startDate time.Time, endDate time.Time, mail string) error
}

type serverService struct {
	serverRepository     repository.ServerRepository
	transitionRepository repository.TransitionRepository
	mailSender           mail.Sender
	transitionWriter     infra.KafkaWriter
	logger               *zap.Logger
}

func (s *serverService) GetServers(ctx context.Context, serverName string, state string, sortBy string, sortOrder string, limit int, offset int) ([]model.Server, error) {
	servers, err := s.serverRepository.GetServers(ctx, serverName, state, sortBy, sortOrder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServers: %w", err)
	}
	return servers, nil
}

func (s *serverService) GetServerById(ctx context.Context, id int64) (model.Server, error) {
	server, err := s.serverRepository.GetServerById(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.GetServerById: %w", err)
	}
	return server, nil
}

func (s *serverService) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	// New records start with the empty state, equivalent to offline.
	server.ServerState = ""
	createdServer, err := s.serverRepository.CreateServer(ctx, server)
	if err != nil {
		return server, fmt.Errorf("ServerService.CreateServer: %w", err)
	}
	return createdServer, nil
}

func (s *serverService) CreateServers(ctx context.Context, servers []model.Server) (insertedServers []model.Server, nonInsertedServers []model.Server, err error) {
	for i := range servers {
		servers[i].ServerState = ""
	}
	insertedServers, nonInsertedServers, err = s.serverRepository.ImportServers(ctx, servers)
	if err != nil {
		err = fmt.Errorf("ServerService.CreateServers: %w", err)
	}
	return
}

func (s *serverService) UpdateServer(ctx context.Context, updatedServerData model.Server) (model.Server, error) {
	// The state machine owns server_state; administrative updates never
	// touch it.
	updatedServerData.ServerState = ""
	updatedServer, err := s.serverRepository.UpdateServer(ctx, updatedServerData)
	if err != nil {
		return model.Server{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	return updatedServer, nil
}

func (s *serverService) DeleteServer(ctx context.Context, id int64) error {
	err := s.serverRepository.DeleteServerById(ctx, id)
	if err != nil {
		return fmt.Errorf("ServerService.DeleteServer: %w", err)
	}
	return nil
}

func (s *serverService) MarkServerOnline(ctx context.Context, id int64, instanceId string) error {
	err := s.serverRepository.SetServerOnline(ctx, id, instanceId)
	if err != nil {
		return fmt.Errorf("ServerService.MarkServerOnline: %w", err)
	}
	s.emitTransition(ctx, id, lifecycle.ServerStarting, lifecycle.ServerStarted)
	return nil
}

func (s *serverService) emitTransition(ctx context.Context, serverID int64, from string, to string) {
	event := model.Transition{
		ServerID:  serverID,
		FromState: from,
		ToState:   to,
		Actor:     "bootstrap",
		Timestamp: time.Now(),
	}
	b, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal transition event", zap.Error(fmt.Errorf("ServerService.emitTransition: %w", err)))
		return
	}
	err = s.transitionWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(serverID, 10)),
		Value: b,
	})
	if err != nil {
		s.logger.Error("failed to write transition event", zap.Error(fmt.Errorf("ServerService.emitTransition: %w", err)))
	}
}

func (s *serverService) GetServerTransitions(ctx context.Context, id int64, limit int) ([]model.Transition, error) {
	transitions, err := s.transitionRepository.GetServerTransitions(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("ServerService.GetServerTransitions: %w", err)
	}
	return transitions, nil
}

func (s *serverService) ReportServersActivity(ctx context.Context, startDate time.Time, endDate time.Time, mail string) error {
	activity, err := s.transitionRepository.GetTransitionActivity(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersActivity: %w", err)
	}
	textBody := generateTextMailBody(activity)
	htmlBody := generateHTMLBody(activity)
	subject := fmt.Sprintf("Servers Activity Report From %s To %s", startDate, endDate.Add(-1*time.Second))
	err = s.mailSender.SendMail([]string{mail}, subject, htmlBody, textBody, nil)
	if err != nil {
		return fmt.Errorf("ServerService.ReportServersActivity: %w", err)
	}
	return nil
}

func generateTextMailBody(activity repository.TransitionActivity) string {
	return fmt.Sprintf(
		"--- SUMMARY ---\n"+
			"Total Transitions: %d\n"+
			"Provisioning Requests: %d\n"+
			"Servers Came Online: %d\n"+
			"Servers Taken Offline: %d\n\n"+
			"Active Servers: %d",
		activity.TotalTransitions,
		activity.StartedCnt,
		activity.OnlineCnt,
		activity.StoppedCnt,
		activity.ActiveServersCnt,
	)
}

func generateHTMLBody(activity repository.TransitionActivity) string {
	htmlFormat := `
<body>
    <table style="width:100%%; border-collapse: collapse;">
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Total Transitions:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Provisioning Requests:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Servers Came Online:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Servers Taken Offline:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
        <tr>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px; background-color: #f2f2f2;">Active Servers:</td>
            <td style="border: 1px solid #dddddd; text-align: left; padding: 8px;">%d</td>
        </tr>
    </table>
</body>`

	return fmt.Sprintf(htmlFormat,
		activity.TotalTransitions,
		activity.StartedCnt,
		activity.OnlineCnt,
		activity.StoppedCnt,
		activity.ActiveServersCnt,
	)
}

func NewServerService(serverRepository repository.ServerRepository, transitionRepository repository.TransitionRepository, mailSender mail.Sender, transitionWriter infra.KafkaWriter, logger *zap.Logger) ServerService {
	return &serverService{
		serverRepository:     serverRepository,
		transitionRepository: transitionRepository,
		mailSender:           mailSender,
		transitionWriter:     transitionWriter,
		logger:               logger,
	}
}
