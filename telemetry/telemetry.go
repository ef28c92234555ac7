//
// Copyright (C) 2026 The wxarena Authors. All rights reserved.
//
// wxarena is licensed under the Apache License Version 2.0.
//
//

// Package telemetry holds the tracing handles shared across wxarena.
package telemetry

import (
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentName identifies wxarena spans in exported traces.
const InstrumentName = "wxarena"

// Span operation names.
const (
	OperationChat     = "chat"
	OperationEvaluate = "evaluate"
)

// TracerProvider is the provider used for all wxarena spans. It defaults to a
// noop provider; hosts that want exported traces replace it before serving.
var TracerProvider trace.TracerProvider = noop.NewTracerProvider()

// Tracer is the tracer used for all wxarena spans. Replace it together with
// TracerProvider.
var Tracer trace.Tracer = TracerProvider.Tracer(InstrumentName)
