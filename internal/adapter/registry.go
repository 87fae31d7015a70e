package adapter

import (
	"fmt"

	"TicketCompare/internal/config"
	"TicketCompare/internal/interfaces"
	"TicketCompare/internal/model"

	"github.com/sirupsen/logrus"
)

// ========== 全局工厂函数注册表 ==========
var factoryRegistry = make(map[model.PlatformType]Factory)

// Register 供适配器init函数调用，注册工厂函数
func Register(platform model.PlatformType, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("平台%s的工厂函数不能为nil", platform))
	}
	if _, exists := factoryRegistry[platform]; exists {
		logrus.Warnf("平台%s的适配器已注册，将覆盖原有实现", platform)
	}
	factoryRegistry[platform] = factory
	logrus.Debugf("平台%s工厂函数注册成功", platform)
}

// GetFactory 获取指定平台的工厂函数
func GetFactory(platform model.PlatformType) (Factory, bool) {
	factory, ok := factoryRegistry[platform]
	return factory, ok
}

// ListFactories 列出所有已注册的工厂函数平台
func ListFactories() []model.PlatformType {
	var platforms []model.PlatformType
	for p := range factoryRegistry {
		platforms = append(platforms, p)
	}
	return platforms
}

// PlatformRegistry 按 listing.enabled_platforms 顺序持有适配器实例，顺序即合并顺序
type PlatformRegistry struct {
	cfg      *config.Config
	logger   *logrus.Logger
	ordered  []interfaces.PlatformAdapter
	adapters map[model.PlatformType]interfaces.PlatformAdapter
}

func NewPlatformRegistry(cfg *config.Config, logger *logrus.Logger) *PlatformRegistry {
	r := &PlatformRegistry{
		cfg:      cfg,
		logger:   logger,
		adapters: make(map[model.PlatformType]interfaces.PlatformAdapter),
	}
	r.initAdaptersFromFactories()
	return r
}

// initAdaptersFromFactories 从工厂函数注册表初始化适配器实例
func (r *PlatformRegistry) initAdaptersFromFactories() {
	r.logger.WithField("factory_platforms", ListFactories()).Debug("已注册的工厂函数")

	loc := r.cfg.Listing.Location()
	for _, name := range r.cfg.Listing.EnabledPlatforms {
		platformType := model.PlatformType(name)
		log := r.logger.WithField("platform", platformType)

		if !platformType.Valid() {
			log.Error("未知平台，忽略")
			continue
		}
		if _, dup := r.adapters[platformType]; dup {
			log.Warn("平台重复启用，忽略")
			continue
		}
		platformCfg, ok := r.cfg.Platforms[name]
		if !ok {
			log.Error("未获取到平台配置")
			continue
		}
		factory, ok := GetFactory(platformType)
		if !ok {
			log.Error("未找到对应的工厂函数（init未注册？）")
			continue
		}

		adapterIns := factory(&platformCfg, loc, r.logger)
		if adapterIns == nil {
			log.Error("工厂函数返回nil适配器实例")
			continue
		}
		// 验证实例的平台类型是否匹配
		if adapterIns.GetType() != platformType {
			r.logger.WithFields(logrus.Fields{
				"config_platform":  platformType,
				"adapter_platform": adapterIns.GetType(),
			}).Error("适配器平台类型与配置不匹配")
			continue
		}

		r.adapters[platformType] = adapterIns
		r.ordered = append(r.ordered, adapterIns)
		log.Info("适配器实例初始化成功")
	}

	r.logger.WithField("instance_platforms", len(r.ordered)).Info("最终初始化的适配器实例数量")
}

// Adapters 按合并顺序返回适配器
func (r *PlatformRegistry) Adapters() []interfaces.PlatformAdapter {
	out := make([]interfaces.PlatformAdapter, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ListRegisteredPlatforms 获取已初始化的平台类型列表（按合并顺序）
func (r *PlatformRegistry) ListRegisteredPlatforms() []model.PlatformType {
	platforms := make([]model.PlatformType, 0, len(r.ordered))
	for _, a := range r.ordered {
		platforms = append(platforms, a.GetType())
	}
	return platforms
}

// GetPlatformCount 获取已初始化实例的平台数量
func (r *PlatformRegistry) GetPlatformCount() int {
	return len(r.ordered)
}
