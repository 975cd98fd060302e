package main

import (
	"context"

	"github.com/bjulian5/braid/cmd"
)

func main() {
	ctx := context.Background()
	cmd.Execute(ctx)
}
