// This file is part of atari2600.
//
// atari2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari2600.  If not, see <https://www.gnu.org/licenses/>.

package riot_test

import (
	"testing"

	"github.com/ltriant/atari2600/hardware/memory"
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/riot"
	"github.com/ltriant/atari2600/hardware/riot/ports"
	"github.com/ltriant/atari2600/test"
)

// mockInput records fire button forwarding
type mockInput struct {
	port    addresses.ChipRegister
	pressed bool
	calls   int
}

func (m *mockInput) UpdateInput(port addresses.ChipRegister, pressed bool) {
	m.port = port
	m.pressed = pressed
	m.calls++
}

func peek(t *testing.T, mem *memory.VCSMemory, address uint16) uint8 {
	t.Helper()
	v, err := mem.Peek(address)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func poke(t *testing.T, mem *memory.VCSMemory, r *riot.RIOT, address uint16, value uint8) {
	t.Helper()
	if err := mem.Write(address, value); err != nil {
		t.Fatal(err)
	}
	r.ReadMemory()
}

func TestTimer(t *testing.T) {
	mem := memory.NewVCSMemory()
	r := riot.NewRIOT(mem.RIOT, &mockInput{})

	// the new value appears in INTIM immediately
	poke(t, mem, r, 0x0295, 0x03) // TIM8T
	test.Equate(t, peek(t, mem, 0x0284), 3)

	// the first decrement follows on the next cycle; after that the value
	// decreases once per interval
	r.Step()
	test.Equate(t, peek(t, mem, 0x0284), 2)

	for i := 0; i < 8; i++ {
		r.Step()
	}
	test.Equate(t, peek(t, mem, 0x0284), 1)

	for i := 0; i < 8; i++ {
		r.Step()
	}
	test.Equate(t, peek(t, mem, 0x0284), 0)

	// underflow raises the TIMINT flags
	for i := 0; i < 8; i++ {
		r.Step()
	}
	test.Equate(t, peek(t, mem, 0x0284), 0xff)
	test.Equate(t, peek(t, mem, 0x0285), 0xc0)

	// after underflow the timer free-runs at one decrement per cycle
	r.Step()
	test.Equate(t, peek(t, mem, 0x0284), 0xfe)

	// bit 6 of TIMINT clears when the register is read; bit 7 does not
	if _, err := mem.Read(0x0285); err != nil {
		t.Fatal(err)
	}
	r.Step()
	test.Equate(t, peek(t, mem, 0x0285), 0x80)

	// reading INTIM acknowledges the underflow and the interval is
	// honoured again
	if _, err := mem.Read(0x0284); err != nil {
		t.Fatal(err)
	}
	r.Step()
	test.Equate(t, peek(t, mem, 0x0285), 0x00)

	before := peek(t, mem, 0x0284)
	for i := 0; i < 7; i++ {
		r.Step()
	}
	test.Equate(t, peek(t, mem, 0x0284), before)
}

func TestTimerRewrite(t *testing.T) {
	mem := memory.NewVCSMemory()
	r := riot.NewRIOT(mem.RIOT, &mockInput{})

	poke(t, mem, r, 0x0294, 0x00) // TIM1T
	r.Step()
	test.Equate(t, peek(t, mem, 0x0284), 0xff)

	// writing a new value clears an outstanding underflow
	poke(t, mem, r, 0x0296, 0x10) // TIM64T
	test.Equate(t, peek(t, mem, 0x0284), 0x10)
	test.Equate(t, peek(t, mem, 0x0285), 0x00)
}

func TestJoystick(t *testing.T) {
	mem := memory.NewVCSMemory()
	inp := &mockInput{}
	r := riot.NewRIOT(mem.RIOT, inp)

	// nothing attached is pressed at power-on
	test.Equate(t, peek(t, mem, 0x0280), 0xff)

	// directions are active low; player 0 in the high nibble
	if err := r.Ports.HandleEvent(0, ports.Right); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, peek(t, mem, 0x0280), 0x7f)

	if err := r.Ports.HandleEvent(1, ports.Up); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, peek(t, mem, 0x0280), 0x7e)

	if err := r.Ports.HandleEvent(0, ports.NoRight); err != nil {
		t.Fatal(err)
	}
	if err := r.Ports.HandleEvent(1, ports.NoUp); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, peek(t, mem, 0x0280), 0xff)

	// fire buttons are forwarded to the TIA
	if err := r.Ports.HandleEvent(0, ports.Fire); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, inp.calls, 1)
	test.Equate(t, int(inp.port), int(addresses.INPT4))
	test.Equate(t, inp.pressed, true)

	if err := r.Ports.HandleEvent(1, ports.NoFire); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, int(inp.port), int(addresses.INPT5))
	test.Equate(t, inp.pressed, false)
}

func TestPanel(t *testing.T) {
	mem := memory.NewVCSMemory()
	r := riot.NewRIOT(mem.RIOT, &mockInput{})

	// color television, switches unpressed, difficulty switches advanced
	test.Equate(t, peek(t, mem, 0x0282), 0xcb)

	if err := r.Ports.HandleEvent(0, ports.PanelSelect); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, peek(t, mem, 0x0282), 0xc9)

	if err := r.Ports.HandleEvent(0, ports.PanelNoSelect); err != nil {
		t.Fatal(err)
	}
	if err := r.Ports.HandleEvent(0, ports.PanelReset); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, peek(t, mem, 0x0282), 0xca)

	if err := r.Ports.HandleEvent(0, ports.PanelNoReset); err != nil {
		t.Fatal(err)
	}
	if err := r.Ports.HandleEvent(0, ports.PanelToggleColor); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, peek(t, mem, 0x0282), 0xc3)
}

func TestDataDirection(t *testing.T) {
	mem := memory.NewVCSMemory()
	r := riot.NewRIOT(mem.RIOT, &mockInput{})

	// with the high nibble switched to output, reads of SWCHA mix the
	// driven value with the pin state of the input bits
	poke(t, mem, r, 0x0281, 0xf0) // SWACNT
	poke(t, mem, r, 0x0280, 0x30) // SWCHA
	test.Equate(t, peek(t, mem, 0x0280), 0x3f)

	// back to all-input
	poke(t, mem, r, 0x0281, 0x00)
	test.Equate(t, peek(t, mem, 0x0280), 0xff)
}
