package main

import (
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/debugs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
