package live

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/schedsim/model"
)

// Command lists processes ordered by CPU usage.
const Command = "ps -eo pid,comm,pri,etimes,time --sort=-%cpu"

// Parse converts ps output into at most top processes; top <= 0 keeps all.
// Every process arrives at 0 and its burst is the cumulative CPU time in
// seconds, at least 1.  Lines that cannot be parsed are skipped.
func Parse(output string, top int) model.Processes {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	var ret model.Processes
	seen := map[int]bool{}
	for i, line := range lines {
		if i == 0 && strings.Contains(strings.ToUpper(line), "PID") {
			continue
		}
		process, err := parseLine(line)
		if err != nil || seen[process.PID] {
			continue
		}
		seen[process.PID] = true
		ret = append(ret, process)
		if top > 0 && len(ret) == top {
			break
		}
	}
	return ret
}

// parseLine reads "pid comm pri etimes time"; comm may contain spaces.
func parseLine(line string) (*model.Process, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return nil, fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	n := len(fields)
	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pid %q: %w", fields[0], err)
	}
	priority, err := strconv.Atoi(fields[n-3])
	if err != nil {
		return nil, fmt.Errorf("invalid priority %q: %w", fields[n-3], err)
	}
	elapsed, err := strconv.ParseFloat(fields[n-2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid elapsed time %q: %w", fields[n-2], err)
	}
	cpu, err := ParseCPUTime(fields[n-1])
	if err != nil {
		return nil, err
	}
	burst := float64(cpu)
	if burst < 1 {
		burst = 1
	}
	process := model.NewProcess(pid, 0, burst).
		WithName(strings.Join(fields[1:n-3], " ")).
		WithPriority(priority)
	process.Elapsed = elapsed
	return process, nil
}

// ParseCPUTime converts ps TIME ([DD-]HH:MM:SS, MM:SS or plain seconds)
// into whole seconds.
func ParseCPUTime(value string) (int, error) {
	days := 0
	if idx := strings.Index(value, "-"); idx != -1 {
		d, err := strconv.Atoi(value[:idx])
		if err != nil {
			return 0, fmt.Errorf("invalid cpu time %q: %w", value, err)
		}
		days = d
		value = value[idx+1:]
	}
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid cpu time %q", value)
	}
	seconds := 0
	for i, part := range parts {
		last := i == len(parts)-1
		var v int
		if last {
			f, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return 0, fmt.Errorf("invalid cpu time %q: %w", value, err)
			}
			v = int(f)
		} else {
			n, err := strconv.Atoi(part)
			if err != nil {
				return 0, fmt.Errorf("invalid cpu time %q: %w", value, err)
			}
			v = n
		}
		seconds = seconds*60 + v
	}
	return days*86400 + seconds, nil
}
