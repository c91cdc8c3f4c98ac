// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package config

// Config passed to the SDK services (no viper/INI here)
type Config struct {
	Core    CoreConfig
	S3      S3Config
	Decrypt DecryptConfig
}

type CoreConfig struct {
	// BaseURL is the access API root, e.g. https://ega.ebi.ac.uk/ega/rest/access/v2
	BaseURL string
	// DownloadURL is the data service root serving raw ticket downloads
	DownloadURL string
	// RetryMax is the number of retries per call; 0 disables retries
	RetryMax int
	// Debug echoes every JSON reply at debug level
	Debug bool
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
}

// DecryptConfig locates the external EGA decryption client.
type DecryptConfig struct {
	Java string
	Jar  string
}
