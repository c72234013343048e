// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the shop-panel client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (exported into the process environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive defaults before validation.
// The main entry point is [GetClientConfig].
package config
