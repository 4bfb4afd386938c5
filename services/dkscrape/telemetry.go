package dkscrape

import (
	"dkscrape-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("dkscrape.services.dkscrape")
