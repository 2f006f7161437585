package infrastructure

import (
	"sync"

	"github.com/Fivegen-LLC/sfputil/internal/domains/sfp"
)

var (
	sfpService     *sfp.Service
	sfpServiceOnce sync.Once
)

func (k *Kernel) InjectSfpService() *sfp.Service {
	sfpServiceOnce.Do(func() {
		sfpService = sfp.NewService(
			k.SfpUtil,
		)
	})

	return sfpService
}
