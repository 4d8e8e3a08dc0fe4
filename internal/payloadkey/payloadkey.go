// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package payloadkey holds the capability token for raw payload access.
//
// The guarded GetXxxTextureInfo accessors on gtex.TextureInfo re-check
// validity and rebuild the native info on every call. Backend-internal
// collaborators (a backend's caps and texture implementations) read the
// raw payload slot instead, and must present a Key to do so:
//
//	spec := info.MtlSpec(payloadkey.Key{})
//
// Because this package lives under internal/, only packages of the gtex
// module can construct a Key. The capability boundary is therefore
// visible in the accessor signature and enforced by the import graph
// rather than by convention.
package payloadkey

// Key authorizes raw payload slot access.
type Key struct{}
