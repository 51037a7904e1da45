// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the plain data types shared between the transport,
// service and presentation layers of the adventure client.
package models
