package web

import "embed"

// StaticFS 评估面板静态页面
//
//go:embed index.html
var StaticFS embed.FS
