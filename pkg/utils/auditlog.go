package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/domain/audit"
	"github.com/linskybing/grant-tracker/internal/repository"
	"github.com/linskybing/grant-tracker/pkg/logger"
	"go.uber.org/zap"
)

var LogAuditWithConsole = func(c *gin.Context, entry audit.Entry, repos repository.AuditRepo) {
	// Extract data synchronously, the gin context is recycled after the request
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")
	log := logger.FromContext(c)

	go func() {
		if err := LogAudit(userID, ip, ua, entry, repos); err != nil {
			log.Warn("audit log write failed",
				zap.String("action", string(entry.Action)),
				zap.String("resource_type", string(entry.Resource)),
				zap.Uint("resource_id", entry.ResourceID),
				zap.Error(err))
		}
	}()
}

var LogAudit = func(userID uint, ip, ua string, entry audit.Entry, repos repository.AuditRepo) error {
	return repos.CreateAuditLog(&audit.AuditLog{
		UserID:       userID,
		Action:       entry.Action,
		ResourceType: entry.Resource,
		ResourceID:   entry.ResourceID,
		OldData:      marshalAudit(entry.Before),
		NewData:      marshalAudit(entry.After),
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  entry.Description,
	})
}

func marshalAudit(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.L().Warn("audit marshal failed", zap.Error(err))
		return nil
	}
	return data
}
