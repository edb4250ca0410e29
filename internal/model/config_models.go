package model

// Config holds the application configuration settings.
type Config struct {
	DataDir                  string `json:"data_dir" mapstructure:"data_dir"`
	StorageDriver            string `json:"storage_driver" mapstructure:"storage_driver"`
	StorageFile              string `json:"storage_file" mapstructure:"storage_file"`
	LogFolder                string `json:"log_folder" mapstructure:"log_folder"`
	CommandLog               string `json:"command_log" mapstructure:"command_log"`
	ErrorLog                 string `json:"error_log" mapstructure:"error_log"`
	InfoLog                  string `json:"info_log" mapstructure:"info_log"`
	AdminUsername            string `json:"admin_username" mapstructure:"admin_username"`
	AdminPassword            string `json:"admin_password" mapstructure:"admin_password"`
	InactivityTimeoutMinutes int    `json:"inactivity_timeout_minutes" mapstructure:"inactivity_timeout_minutes"`
	SessionCapMinutes        int    `json:"session_cap_minutes" mapstructure:"session_cap_minutes"`
	ExportDir                string `json:"export_dir" mapstructure:"export_dir"`
}
