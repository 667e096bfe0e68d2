// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpucore

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g. gogpu.App) implements DeviceHandle and passes
// it to Submitter constructors, allowing render2d backends to use the
// shared GPU device. render2d RECEIVES the device from the host; it does
// NOT create one.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// render2d-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device. Submitters constructed
// from it run in CPU recording mode; useful for tests and headless tools.
type NullDeviceHandle struct{}

// Device returns nil: no device is available.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil: no queue is available.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil: no adapter is available.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns an empty description: there is no adapter.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{}
}

// SurfaceFormat returns the undefined format: there is no surface.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var _ DeviceHandle = NullDeviceHandle{}
