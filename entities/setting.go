package entities

const (
	SettingSyncToken = "sync_token"
	SettingLastSync  = "last_sync"
)

type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
