package cmd

import (
	"logistics/internal/adapters/out/blobstore"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/adapters/out/sysclock"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	clock         ports.Clock
	blobStore     ports.BlobStore
	trackingCache ports.TrackingCache
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client) (CompositionRoot, error) {
	blobStore, err := blobstore.NewFilesystemBlobStore(config.ProofStorePath)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:         sysclock.NewSystemClock(),
		blobStore:     blobStore,
		trackingCache: rediscache.NewRedisTrackingCache(redisClient),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGenerateRouteSheetsCommandHandler() commands.GenerateRouteSheetsCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateRouteSheetsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateBuildRoutesCommandHandler() commands.BuildRoutesCommandHandler {
	var f commands.RoutingUoWFactory = FuncRoutingUoWFactory(func() commands.RoutingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBuildRoutesCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGenerateSettlementCommandHandler() commands.GenerateSettlementCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateSettlementCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateProcessSettlementsCommandHandler() commands.ProcessSettlementsCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessSettlementsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateMarkOverdueSettlementsCommandHandler() commands.MarkOverdueSettlementsCommandHandler {
	var f commands.SettlementSweepUoWFactory = FuncSettlementSweepUoWFactory(func() commands.SettlementSweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueSettlementsCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAttachPaymentProofCommandHandler() commands.AttachPaymentProofCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachPaymentProofCommandHandler(f, c.blobStore, c.clock)
}

func (c *CompositionRoot) CreateAdjustCreditCommandHandler() commands.AdjustCreditCommandHandler {
	var f commands.AgencyUoWFactory = FuncAgencyUoWFactory(func() commands.AgencyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustCreditCommandHandler(f)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewTrackOrderQueryHandler(uow.OrderRepository(), c.trackingCache)
}

func (c *CompositionRoot) CreateGetCarrierPaymentQueryHandler() queries.GetCarrierPaymentQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetCarrierPaymentQueryHandler(
		uow.CarrierRepository(), uow.OrderRepository(), uow.RouteSheetRepository())
}

func (c *CompositionRoot) CreateGetPaymentHistoryQueryHandler() queries.GetPaymentHistoryQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetPaymentHistoryQueryHandler(
		uow.CarrierRepository(), uow.OrderRepository(), uow.RouteSheetRepository())
}

func (c *CompositionRoot) CreateCheckCreditQueryHandler() queries.CheckCreditQueryHandler {
	return queries.NewCheckCreditQueryHandler(c.uowFactory.Create().AgencyRepository())
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncRoutingUoWFactory func() commands.RoutingUoW

func (f FuncRoutingUoWFactory) Create() commands.RoutingUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncSettlementSweepUoWFactory func() commands.SettlementSweepUoW

func (f FuncSettlementSweepUoWFactory) Create() commands.SettlementSweepUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncAgencyUoWFactory func() commands.AgencyUoW

func (f FuncAgencyUoWFactory) Create() commands.AgencyUoW {
	return f()
}
