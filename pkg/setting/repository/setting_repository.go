package repository

type SettingRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
