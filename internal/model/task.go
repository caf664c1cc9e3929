package model

type TaskKind string

const (
	TaskKindApp  TaskKind = "app"
	TaskKindLink TaskKind = "link"
)

type AppTask struct {
	ID                   int64
	Title                string
	Description          string
	Points               int64
	EstimatedTimeMinutes int
	TelegramURL          string
	IconType             string
	IsActive             bool
	Completed            bool
}

type LinkTask struct {
	ID          int64
	Title       string
	Description string
	URL         string
	Points      int64
	IsActive    bool
	Completed   bool
}
