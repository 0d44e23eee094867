package config

type AppConfig struct {
	Replay ReplayConfig
	Server ServerConfig
	Store  StoreConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	replayCfg, err := LoadReplay()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	storeCfg, err := LoadStore()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Replay: replayCfg,
		Server: serverCfg,
		Store:  storeCfg,
		Log:    logCfg,
	}, nil
}
