// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the user-management
// service.
//
// Handlers return an error instead of writing failures themselves; a single
// adapter ([Handler.handle]) translates domain error kinds into status codes
// and writes the error message as a plain-text body. Panic recovery, request
// tracing, access logging, compression and bearer authentication are
// middleware applied by [Handler.Init].
package http
