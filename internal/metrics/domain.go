package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultDiscounted = "discounted"
	ResultFullPrice  = "full_price"
	ResultHit        = "hit"
	ResultMiss       = "miss"
	ResultError      = "error"
	ResultSuccess    = "success"
)

var (
	domainOnce sync.Once

	// PricingQuotesTotal 报价次数，按是否命中折扣区分
	PricingQuotesTotal *prometheus.CounterVec
	// PromotionCacheTotal 生效活动缓存命中情况
	PromotionCacheTotal *prometheus.CounterVec
	// BookingsCreatedTotal 新建预约数
	BookingsCreatedTotal *prometheus.CounterVec
	// WorkerTasksTotal 异步任务处理结果
	WorkerTasksTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics 初始化并注册业务指标，仅首次调用生效
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		PricingQuotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_quotes_total",
			Help:      "Count of effective price computations by outcome.",
		}, []string{"result"})
		PromotionCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotion_cache_total",
			Help:      "Active promotion cache lookups by outcome.",
		}, []string{"result"})
		BookingsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of created bookings by pricing outcome.",
		}, []string{"result"})
		WorkerTasksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worker_tasks_total",
			Help:      "Background task processing outcomes.",
		}, []string{"task", "result"})

		mustRegisterCollector(reg, PricingQuotesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PricingQuotesTotal = v
			}
		})
		mustRegisterCollector(reg, PromotionCacheTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PromotionCacheTotal = v
			}
		})
		mustRegisterCollector(reg, BookingsCreatedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				BookingsCreatedTotal = v
			}
		})
		mustRegisterCollector(reg, WorkerTasksTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				WorkerTasksTotal = v
			}
		})
	})
}

// ObserveQuote 记录一次报价
func ObserveQuote(hasDiscount bool) {
	inc(PricingQuotesTotal, discountResult(hasDiscount))
}

// ObservePromotionCache 记录活动缓存查询结果
func ObservePromotionCache(result string) {
	inc(PromotionCacheTotal, result)
}

// ObserveBookingCreated 记录新建预约
func ObserveBookingCreated(hasDiscount bool) {
	inc(BookingsCreatedTotal, discountResult(hasDiscount))
}

// ObserveWorkerTask 记录异步任务结果
func ObserveWorkerTask(task string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	inc(WorkerTasksTotal, task, result)
}

func discountResult(hasDiscount bool) string {
	if hasDiscount {
		return ResultDiscounted
	}
	return ResultFullPrice
}

// 未注册时静默跳过
func inc(vec *prometheus.CounterVec, labels ...string) {
	if vec == nil {
		return
	}
	vec.WithLabelValues(labels...).Inc()
}
