package main

import (
	"github.com/njs-api/njs-api/binding"
	"github.com/njs-api/njs-api/enum"
	"github.com/njs-api/njs-api/result"
)

// The inspector ships a self-contained demo binding so the bridge can be
// exercised without embedding a real engine: a wrapped native gauge with a
// refcounted lifetime, numeric accessors and an enum-typed unit property.

const tagGauge = 0x6761

type gauge struct {
	value int64
	unit  int32
}

const (
	unitCelsius = iota
	unitFahrenheit
	unitKelvin
)

// unitEnum accepts "centigrade" as an alternate spelling of "celsius".
var unitEnum = enum.New(unitCelsius, unitKelvin,
	"celsius\x00@centigrade\x00fahrenheit\x00kelvin")

func gaugeClass() *binding.Class {
	return binding.NewClass("Gauge").
		Constructor(func(c *binding.Call) result.Code {
			if code := c.CheckArgRange(0, 1); code != result.Ok {
				return code
			}
			g := &gauge{}
			if c.ArgCount() == 1 {
				if code := c.UnpackArg(0, &g.value); code != result.Ok {
					return code
				}
			}
			_, code := c.Wrap(g, tagGauge, nil)
			return code
		}).
		Method("add", func(c *binding.Call) result.Code {
			if code := c.CheckArgCount(1); code != result.Ok {
				return code
			}
			var n int64
			if code := c.UnpackArg(0, &n); code != result.Ok {
				return code
			}
			native, code := c.Unwrap(tagGauge)
			if code != result.Ok {
				return code
			}
			g := native.(*gauge)
			g.value += n
			return c.Return(g.value)
		}).
		Getter("value", func(c *binding.Call) result.Code {
			native, code := c.Unwrap(tagGauge)
			if code != result.Ok {
				return code
			}
			return c.Return(native.(*gauge).value)
		}).
		Setter("value", func(c *binding.Call) result.Code {
			native, code := c.Unwrap(tagGauge)
			if code != result.Ok {
				return code
			}
			return c.UnpackArg(0, &native.(*gauge).value)
		}).
		Getter("unit", func(c *binding.Call) result.Code {
			native, code := c.Unwrap(tagGauge)
			if code != result.Ok {
				return code
			}
			return c.ReturnWith(unitEnum, native.(*gauge).unit)
		}).
		Setter("unit", func(c *binding.Call) result.Code {
			native, code := c.Unwrap(tagGauge)
			if code != result.Ok {
				return code
			}
			return c.UnpackArgWith(0, unitEnum, &native.(*gauge).unit)
		}).
		Static("units", func(c *binding.Call) result.Code {
			arr := c.Ctx.NewArray(0)
			for i := unitCelsius; i <= unitKelvin; i++ {
				tok, _ := unitEnum.Stringify(i - unitCelsius)
				if !c.Ctx.SetIndex(arr, uint32(i-unitCelsius), c.Ctx.NewString(tok)) {
					return result.Bypass
				}
			}
			return c.Return(arr)
		})
}
