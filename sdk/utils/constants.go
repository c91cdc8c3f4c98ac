// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".egacli.ini"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	EgaApiURL      = "ega_api_url"
	EgaDownloadURL = "ega_download_url"
	HttpRetryMax   = "http_retry_max"
	DecryptJava    = "decrypt_java"
	DecryptJar     = "decrypt_jar"

	AwsAccessKeyID     = "aws_access_key_id"
	AwsSecretAccessKey = "aws_secret_access_key"
	AwsSessionToken    = "aws_session_token"
	AwsRegion          = "aws_region"
	AwsEndpointURL     = "aws_endpoint_url"

	DefaultApiURL      = "https://ega.ebi.ac.uk/ega/rest/access/v2"
	DefaultDownloadURL = "http://ega.ebi.ac.uk/ega/rest/ds/v2"
)
