package util

import "cpu-scheduler/internal/core"

func CalculateAverage(proccessDetails []core.CompletedProcess) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnaroundTime
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = float64(waitingTimeSum) / proccessCount
	averageResponseTime = float64(responseTimeSum) / proccessCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / proccessCount
	return
}
