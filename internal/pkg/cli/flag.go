// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	envFileFlag = "env-file"
	profileFlag = "profile"
	regionFlag  = "region"
	jsonFlag    = "json"
	yamlFlag    = "yaml"

	// Command specific flags.
	remoteFlag    = "remote"
	nameFlag      = "name"
	ownerFlag     = "owner"
	archFlag      = "arch"
	outputDirFlag = "output-dir"
	stackNameFlag = "stack-name"
	suffixFlag    = "suffix"
)

// Short flag names.
// A short flag only exists if the flag is mandatory by the command.
const (
	envFileFlagShort   = "f"
	nameFlagShort      = "n"
	outputDirFlagShort = "o"
)

// Descriptions for flags.
const (
	envFileFlagDescription   = "Path to the dotenv file holding the deployment configuration."
	profileFlagDescription   = "Name of the AWS profile."
	regionFlagDescription    = "Optional. AWS region. Defaults to the region of the profile."
	jsonFlagDescription      = "Optional. Output in JSON format."
	yamlFlagDescription      = "Optional. Output in YAML format."
	remoteFlagDescription    = "Optional. Check the VPC and certificates against your AWS account."
	nameFlagDescription      = "Name pattern of the product image."
	ownerFlagDescription     = "AWS account ID owning the product image."
	archFlagDescription      = "Architecture of the product image."
	outputDirFlagDescription = "Directory to write the node user data to."
	stackNameFlagDescription = "Name of the stack the runtime nodes belong to."
	suffixFlagDescription    = `Optional. Suffix of the generated resource names.
Defaults to RESOURCE_NAME_SUFFIX or a random value.`
)
