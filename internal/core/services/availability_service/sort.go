package availability_service

type eventSlice []segmentEvent

// less сравнивает события по минуте суток, при совпадении - по порядку
// регистрации записи: более ранняя запись обрабатывается первой
func (e segmentEvent) less(other segmentEvent) bool {
	if e.minute != other.minute {
		return e.minute < other.minute
	}
	if e.seq != other.seq {
		return e.seq < other.seq
	}
	return e.delta > other.delta
}

// quickSort - функция для сортировки eventSlice
func (s eventSlice) quickSort() eventSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	less := eventSlice{}
	equal := eventSlice{}
	greater := eventSlice{}

	for _, event := range s {
		if event.less(pivot) {
			less = append(less, event)
		} else if pivot.less(event) {
			greater = append(greater, event)
		} else {
			equal = append(equal, event)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(less.quickSort(), equal...), greater.quickSort()...)
}
