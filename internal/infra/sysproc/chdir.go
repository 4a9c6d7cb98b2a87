package sysproc

import (
	"fmt"
	"os"

	"github.com/yndnr/brownhttpd/internal/core/domain"
)

// Chdir changes the working directory to root.
func Chdir(root string) error {
	if err := os.Chdir(root); err != nil {
		return domain.ErrChdir.WithDetails(fmt.Sprintf("could not change root to '%s'", root)).Wrap(err)
	}
	return nil
}
