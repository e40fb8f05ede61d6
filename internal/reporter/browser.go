package reporter

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/frameprof/frameprof/domain"
)

// openers tried in order on Linux.
var linuxOpeners = []string{"xdg-open", "gnome-open", "kde-open"}

// OpenBrowser opens the generated report in the default browser. The opener
// process is started and not waited on.
func OpenBrowser(path string) error {
	name, args, err := openerCommand(path)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return domain.NewOutputError("failed to open the report in a browser", err)
	}
	return nil
}

func openerCommand(path string) (string, []string, error) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{path}, nil
	case "linux":
		for _, opener := range linuxOpeners {
			if _, err := exec.LookPath(opener); err == nil {
				return opener, []string{path}, nil
			}
		}
		return "", nil, domain.NewOutputError("no opener found to display the report", nil)
	case "windows":
		return "cmd", []string{"/c", "start", path}, nil
	default:
		return "", nil, domain.NewOutputError(
			fmt.Sprintf("cannot open the report on platform %s", runtime.GOOS), nil)
	}
}
