// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package dmgcore

// checking the continue condition every T-cycle is too frequent; this
// modest brake on how often it's called improves and smooths out
// performance.
const continueCheckFreq = 4096

// Run steps the console as quickly as possible, one master T-cycle at a
// time. continueCheck, if non-nil, is polled periodically (not every
// T-cycle) and should return false when an external event should stop the
// run. Run returns the first Fault the CPU or bus reports.
func (cons *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	checkCt := 0
	for {
		if err := cons.stepCycle(); err != nil {
			return err
		}

		checkCt++
		if checkCt >= continueCheckFreq {
			checkCt = 0
			running, err := continueCheck()
			if err != nil {
				return err
			}
			if !running {
				return nil
			}
		}
	}
}

// RunForTCycles steps the console exactly n master T-cycles. Useful for
// deterministic tests and instruction-budget tooling.
func (cons *Console) RunForTCycles(n int) error {
	for i := 0; i < n; i++ {
		if err := cons.stepCycle(); err != nil {
			return err
		}
	}
	return nil
}

// stepCycle advances every component that runs off the master clock by one
// T-cycle: the CPU's instruction pipeline, then the PPU and APU.
func (cons *Console) stepCycle() error {
	if err := cons.CPU.StepTCycle(cons.Bus); err != nil {
		return err
	}
	cons.Bus.PPU().Step()
	cons.Bus.APU().Step()
	return nil
}
