package graphbuild

import (
	"github.com/sirupsen/logrus"
)

type Setting struct {
	Logger *logrus.Logger
}

var globalSetting Setting

func Init(setting *Setting) {
	globalSetting = *setting
}
