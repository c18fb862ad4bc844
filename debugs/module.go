package debugs

import (
	"github.com/astavie/hexcast/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
