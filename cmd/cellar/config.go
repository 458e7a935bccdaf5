package main

import (
	"fmt"
)

type ConfigSetCmd struct {
	Config string `arg:"" help:"Configuration name to change."`
	Value  string `arg:"" help:"Configuration value to set." optional:""`
}

func (c *ConfigSetCmd) Run(ctx *context) error {
	fmt.Printf("Setting '%v' = '%v'\n", c.Config, c.Value)

	return ctx.ws.SetConfig(c.Config, c.Value)
}

type ConfigGetCmd struct {
	Config string `arg:"" help:"Configuration name to show."`
}

func (c *ConfigGetCmd) Run(ctx *context) error {
	v, ok, err := ctx.ws.GetConfig(c.Config)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Printf("'%v' is not set\n", c.Config)
		return nil
	}

	fmt.Println(v)
	return nil
}
