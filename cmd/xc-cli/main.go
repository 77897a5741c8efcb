package main

import (
	"xcresults-backend/cmd/xc-cli/commands"
	"xcresults-backend/lib/serviceutil"
	"xcresults-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "xc-cli")
	telemetry.InitSlog(false)
	commands.ExecuteContext(ctx)
}
