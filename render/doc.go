// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the host-integration layer between minirender
// and GPU frameworks in the gpucontext ecosystem.
//
// The key principle: minirender RECEIVES a GPU device from the host
// application, it does not create one. A host (e.g. gogpu.App)
// implements DeviceHandle and passes it in, so textures and render
// targets share the host's device and queue.
//
// For standalone use without a host, the backend packages open their
// own device; this package is only for embedding.
package render
