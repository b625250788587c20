package client

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Müşteri bilgisi çözülemediğinde gösterilen metin.
const UnknownCustomerName = "Müşteri Bilgisi Yok"

// ResolveCustomerNames: ödeme listesindeki her satır için müşteri adını
// çözer. Gömülü müşteri varsa ağa çıkılmaz; kalan satırlar için en fazla
// limit eşzamanlı GET yapılır. Aynı müşteri numarasına giden uçuştaki
// istekler singleflight ile tekilleştirilir, çözülmüş numaralar tekrar
// sorgulanmaz. Bulunamayan müşteri hata değildir, ad yerine
// UnknownCustomerName yazılır.
func (c *Client) ResolveCustomerNames(ctx context.Context, payments []Payment, limit int) (map[uint]string, error) {
	names := make(map[uint]string)
	var mu sync.Mutex

	for _, p := range payments {
		if p.MusteriNo != 0 && p.Musteri != nil {
			names[p.MusteriNo] = p.Musteri.TamAd()
		}
	}

	var sf singleflight.Group
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, p := range payments {
		no := p.MusteriNo
		if no == 0 {
			continue
		}

		g.Go(func() error {
			mu.Lock()
			_, resolved := names[no]
			mu.Unlock()
			if resolved {
				return nil
			}

			v, err, _ := sf.Do(strconv.FormatUint(uint64(no), 10), func() (any, error) {
				return c.Customers.Get(gctx, no)
			})
			if err != nil {
				if IsNotFound(err) {
					mu.Lock()
					names[no] = UnknownCustomerName
					mu.Unlock()
					return nil
				}
				return err
			}

			mu.Lock()
			names[no] = v.(*Customer).TamAd()
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}
