// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] is usable by
// either binary. Binary-specific rules live on [ClientConfig] and
// [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ListLimit < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.UserID == "" || cfg.App.ListLimit < 1 || cfg.App.ListLimit > 100 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Cache.RedisAddress != "" && cfg.Storage.Cache.TTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}
