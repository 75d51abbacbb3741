package cron

import (
	"log"
	"time"

	"github.com/citizenconnect/complaints-api/internal/application"
	"github.com/citizenconnect/complaints-api/internal/config"
)

// StartCleanupTask prunes expired audit logs once at startup and then daily.
func StartCleanupTask(auditService *application.AuditService) {
	go func() {
		retention := config.AuditRetentionDays
		log.Printf("Starting background cleanup task (retention: %d days)", retention)

		if err := auditService.CleanupOldLogs(retention); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(retention); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}
