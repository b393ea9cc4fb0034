package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"GSLM_Microservice/internal/server-service/api/dto/request"
	"GSLM_Microservice/internal/server-service/api/dto/response"
	apperrors "GSLM_Microservice/internal/server-service/errors"
	"GSLM_Microservice/internal/server-service/model"
	"GSLM_Microservice/internal/server-service/service"
	"GSLM_Microservice/pkg/lifecycle"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ServerHandler interface {
	CreateServer() gin.HandlerFunc
	ImportServersFromExcelFile() gin.HandlerFunc
	ExportServersToExcelFile() gin.HandlerFunc
	ReportServersActivity() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServerById() gin.HandlerFunc
	GetServerTransitions() gin.HandlerFunc
	MarkServerOnline() gin.HandlerFunc
}

type serverHandler struct {
	logger        *zap.Logger
	serverService service.ServerService
	validator     *validator.Validate
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		if err.Param() == "15:04" {
			return fmt.Sprintf("The %s field is not a valid time, use HH:MM format", err.Field())
		}
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func serverToResponse(server model.Server) response.ServerInfoResponse {
	return response.ServerInfoResponse{
		ID:                server.ID,
		ServerName:        server.ServerName,
		ServerState:       server.ServerState,
		ScheduleStartTime: server.ScheduleStartTime,
		ScheduleStopTime:  server.ScheduleStopTime,
		EC2InstanceID:     server.EC2InstanceID,
		EC2SpotRequestID:  server.EC2SpotRequestID,
		EBSVolumeID:       server.EBSVolumeID,
		InstanceType:      server.InstanceType,
		KeyName:           server.KeyName,
		CreatedAt:         server.CreatedAt,
		UpdatedAt:         server.UpdatedAt,
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Id must be an integer",
		})
		return 0, false
	}
	return id, true
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		serverName := c.Query("server_name")
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		state := c.Query("server_state")
		if state != "" && !lifecycle.IsKnownState(state) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid server state",
			})
			return
		}
		sortBy := c.DefaultQuery("sort_by", "created_at")
		if sortBy != "server_name" && sortBy != "created_at" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort by",
			})
			return
		}
		sortOrder := c.DefaultQuery("sort_order", "asc")
		if sortOrder != "asc" && sortOrder != "desc" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort order",
			})
			return
		}
		servers, err := s.serverService.GetServers(c, serverName, state, sortBy, sortOrder, l, o)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.loggingError(c, err, "failed to get servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal Server Error",
			})
			return
		}
		serversRes := make([]response.ServerInfoResponse, 0)
		for _, server := range servers {
			serversRes = append(serversRes, serverToResponse(server))
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (s *serverHandler) GetServerById() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		server, err := s.serverService.GetServerById(c, id)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("ServerHandler.GetServerById: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to get server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, serverToResponse(server))
	}
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		newServer := model.Server{
			ServerName:        req.ServerName,
			ScheduleStartTime: req.ScheduleStartTime,
			ScheduleStopTime:  req.ScheduleStopTime,
			EBSVolumeID:       req.EBSVolumeID,
			InstanceType:      req.InstanceType,
			KeyName:           req.KeyName,
		}
		res, err := s.serverService.CreateServer(c, newServer)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNameAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server name already exists",
				})
			default:
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.loggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, serverToResponse(res))
	}
}

func (s *serverHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		updatedData := model.Server{
			ID:                id,
			ServerName:        req.ServerName,
			ScheduleStartTime: req.ScheduleStartTime,
			ScheduleStopTime:  req.ScheduleStopTime,
			EBSVolumeID:       req.EBSVolumeID,
			InstanceType:      req.InstanceType,
			KeyName:           req.KeyName,
		}
		updatedServer, err := s.serverService.UpdateServer(c, updatedData)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("ServerHandler.UpdateServer: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to update server %d", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, serverToResponse(updatedServer))
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		err := s.serverService.DeleteServer(c, id)
		if err != nil {
			err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
			s.loggingError(c, err, fmt.Sprintf("failed to delete server %d", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted",
		})
	}
}

func (s *serverHandler) MarkServerOnline() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		var req request.ServerOnlineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		err := s.serverService.MarkServerOnline(c, id, req.EC2InstanceID)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			case errors.Is(err, lifecycle.ErrStateConflict):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server state does not permit the online mark",
				})
			default:
				err = fmt.Errorf("ServerHandler.MarkServerOnline: %w", err)
				s.loggingError(c, err, fmt.Sprintf("failed to mark server %d online", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server marked online",
		})
	}
}

func (s *serverHandler) GetServerTransitions() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		limit := c.DefaultQuery("limit", "50")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if l <= 0 {
			l = 50
		}
		transitions, err := s.serverService.GetServerTransitions(c, id, l)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServerTransitions: %w", err)
			s.loggingError(c, err, fmt.Sprintf("failed to get transitions of server %d", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		transitionsRes := make([]response.TransitionResponse, 0)
		for _, transition := range transitions {
			transitionsRes = append(transitionsRes, response.TransitionResponse{
				ServerID:  transition.ServerID,
				FromState: transition.FromState,
				ToState:   transition.ToState,
				Actor:     transition.Actor,
				Timestamp: transition.Timestamp,
			})
		}
		c.JSON(http.StatusOK, transitionsRes)
	}
}

func (s *serverHandler) ReportServersActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		startTime, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid start date",
			})
			return
		}
		endTime, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		if endTime.Before(startTime) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid end date",
			})
			return
		}
		endTimeFinal := endTime.AddDate(0, 0, 1)
		err = s.serverService.ReportServersActivity(c, startTime, endTimeFinal, req.Email)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ReportServersActivity: %w", err)
			s.loggingError(c, err, "failed to report servers activity", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func (s *serverHandler) ExportServersToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		serverName := c.Query("server_name")
		offset := c.DefaultQuery("offset", "0")
		o, err := strconv.Atoi(offset)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Offset must be an integer",
			})
			return
		}
		limit := c.DefaultQuery("limit", "10")
		l, err := strconv.Atoi(limit)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if o < 0 {
			o = 0
		}
		if l <= 0 {
			l = 10
		}
		state := c.Query("server_state")
		if state != "" && !lifecycle.IsKnownState(state) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid server state",
			})
			return
		}
		sortBy := c.DefaultQuery("sort_by", "created_at")
		if sortBy != "server_name" && sortBy != "created_at" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort by",
			})
			return
		}
		sortOrder := c.DefaultQuery("sort_order", "desc")
		if sortOrder != "asc" && sortOrder != "desc" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid sort order",
			})
			return
		}
		servers, err := s.serverService.GetServers(c, serverName, state, sortBy, sortOrder, l, o)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := s.generateExcelFile(servers)
		defer file.Close()
		if err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("ServerHandler.ExportServersToExcelFile: %w", err)
			s.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func (s *serverHandler) generateExcelFile(servers []model.Server) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"id", "server_name", "server_state", "schedule_start_time", "schedule_stop_time", "ec2_instance_id", "ec2_spot_request_id", "ebs_volume_id", "instance_type", "key_name", "created_at", "updated_at"}
	headerStarCell := "A1"
	err = f.SetSheetRow(sheetName, headerStarCell, &headers)
	if err != nil {
		return nil, err
	}
	for i, server := range servers {
		startTimeStr := ""
		if server.ScheduleStartTime != nil {
			startTimeStr = *server.ScheduleStartTime
		}
		stopTimeStr := ""
		if server.ScheduleStopTime != nil {
			stopTimeStr = *server.ScheduleStopTime
		}
		rowData := []interface{}{
			server.ID,
			server.ServerName,
			server.ServerState,
			startTimeStr,
			stopTimeStr,
			server.EC2InstanceID,
			server.EC2SpotRequestID,
			server.EBSVolumeID,
			server.InstanceType,
			server.KeyName,
			server.CreatedAt.Format("2006-01-02 15:04:05"),
			server.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		err = f.SetSheetRow(sheetName, startCell, &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (s *serverHandler) ImportServersFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validServers, invalidServers, err := s.extractServersFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
				s.loggingError(c, err, "failed to import server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}

		importedServers, nonImportedServers, err := s.serverService.CreateServers(c, validServers)
		if err != nil {
			err = fmt.Errorf("ServerHandler.ImportServersFromExcelFile: %w", err)
			s.loggingError(c, err, "failed to import server", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		var importedServerNames []string
		for _, importedServer := range importedServers {
			importedServerNames = append(importedServerNames, importedServer.ServerName)
		}
		for _, nonImportedServer := range nonImportedServers {
			invalidServers = append(invalidServers, nonImportedServer.ServerName)
		}
		c.JSON(http.StatusOK, response.ImportServerResponse{
			ImportedCount:   len(importedServerNames),
			ImportedServers: importedServerNames,
			FailedCount:     len(invalidServers),
			FailedServers:   invalidServers,
		})
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

func (s *serverHandler) extractServersFromExcelFile(file *multipart.FileHeader, importSheet string) (validServers []model.Server, invalidServers []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	requiredColumns := []string{"server_name", "instance_type", "key_name"}
	for _, requiredColumn := range requiredColumns {
		if _, ok := columnMap[requiredColumn]; !ok {
			err = errMissingRequiredColumn
			return
		}
	}

	cellValue := func(row []string, column string) string {
		idx, ok := columnMap[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		req := request.ServerRequest{
			ServerName:   cellValue(row, "server_name"),
			EBSVolumeID:  cellValue(row, "ebs_volume_id"),
			InstanceType: cellValue(row, "instance_type"),
			KeyName:      cellValue(row, "key_name"),
		}
		if start := cellValue(row, "schedule_start_time"); start != "" {
			req.ScheduleStartTime = &start
		}
		if stop := cellValue(row, "schedule_stop_time"); stop != "" {
			req.ScheduleStopTime = &stop
		}
		if e := s.validator.Struct(req); e != nil {
			invalidServers = append(invalidServers, req.ServerName)
		} else {
			validServers = append(validServers, model.Server{
				ServerName:        req.ServerName,
				ScheduleStartTime: req.ScheduleStartTime,
				ScheduleStopTime:  req.ScheduleStopTime,
				EBSVolumeID:       req.EBSVolumeID,
				InstanceType:      req.InstanceType,
				KeyName:           req.KeyName,
			})
		}
	}
	return
}

func NewServerHandler(logger *zap.Logger, serverService service.ServerService) ServerHandler {
	return &serverHandler{
		logger:        logger,
		serverService: serverService,
		validator:     validator.New(),
	}
}
