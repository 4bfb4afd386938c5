package draftkings

import (
	"dkscrape-backend/lib/restyutil"
	"dkscrape-backend/lib/telemetry"
)

var tracer = telemetry.Tracer("dkscrape.lib.scrapers.draftkings")
var restyInstrumentOutput restyutil.InstrumentOutput

func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
