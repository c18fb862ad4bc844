package main

import (
	"github.com/astavie/hexcast/configs"
	"github.com/astavie/hexcast/debugs"
	"github.com/astavie/hexcast/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs configs.Module
	Debugs  debugs.Module
}
