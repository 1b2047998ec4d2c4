package platform

import "time"

// Item is one entry of the tenant's cross-resource catalog. The catalog
// indexes every shareable resource (apps, datasets, automations, ...)
// under a common shape.
type Item struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	ResourceType string     `json:"resourceType"` // "app", "dataset", "automation", ...
	ResourceID   string     `json:"resourceId"`
	SpaceID      string     `json:"spaceId,omitempty"`
	OwnerID      string     `json:"ownerId,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// Space is a shared or managed workspace grouping resources.
type Space struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"` // "shared", "managed", "data"
	Description string     `json:"description,omitempty"`
	OwnerID     string     `json:"ownerId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// App is an analytics application.
type App struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	OwnerID      string     `json:"ownerId,omitempty"`
	SpaceID      string     `json:"spaceId,omitempty"`
	Published    bool       `json:"published"`
	LastReloadAt *time.Time `json:"lastReloadTime,omitempty"`
}

// AppDetail is an App joined with the display names of its owner and
// space, resolved with two concurrent lookups.
type AppDetail struct {
	App
	OwnerName string `json:"ownerName,omitempty"`
	SpaceName string `json:"spaceName,omitempty"`
}

// Dataset is a catalogued data asset.
type Dataset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	QRI      string `json:"qri,omitempty"` // qualified resource identifier, used for lineage lookups
	SpaceID  string `json:"spaceId,omitempty"`
	RowCount int64  `json:"rowCount,omitempty"`
}

// Automation is a scheduled or triggered workflow.
type Automation struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	State     string     `json:"state"`   // "available", "disabled", ...
	RunMode   string     `json:"runMode"` // "manual", "scheduled", "triggered", "webhook"
	LastRunAt *time.Time `json:"lastRunAt,omitempty"`
}

// AutomationRun is one execution of an automation.
type AutomationRun struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	Status    string     `json:"status"` // "finished", "failed", "running", ...
	StartedAt *time.Time `json:"startTime,omitempty"`
	EndedAt   *time.Time `json:"endTime,omitempty"`
}

// Reload is one app reload execution.
type Reload struct {
	ID        string     `json:"id"`
	AppID     string     `json:"appId"`
	Status    string     `json:"status"` // "SUCCEEDED", "FAILED", "RELOADING", ...
	Partial   bool       `json:"partial,omitempty"`
	StartedAt *time.Time `json:"startTime,omitempty"`
	EndedAt   *time.Time `json:"endTime,omitempty"`
}

// Alert is a data alert: a monitored condition evaluated against an
// app that notifies its recipients when triggered.
type Alert struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	AppID       string     `json:"appId,omitempty"`
	Enabled     bool       `json:"enabled"`
	Status      string     `json:"status,omitempty"` // last evaluation outcome
	TriggeredAt *time.Time `json:"lastTriggerTime,omitempty"`
}

// User is a tenant member.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status,omitempty"`
}

// Assistant is a conversational AI assistant configured on the tenant.
type Assistant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

// Experiment is an AutoML experiment.
type Experiment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status,omitempty"`
	ModelCount int    `json:"modelCount,omitempty"`
}
